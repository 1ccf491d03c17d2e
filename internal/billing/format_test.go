package billing

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{1000, "1 000"},
		{45000, "45 000"},
		{268800, "268 800"},
		{1000000, "1 000 000"},
		{1234567, "1 234 567"},
		{-45000, "-45 000"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.n); got != tt.want {
			t.Errorf("FormatMoney(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	b := newTestBill(t, []string{"User 1", "User 2", "User 3"}, "12")
	g1, _ := b.AddGroup("Group 1", []int{0, 1})
	g2, _ := b.AddGroup("Group 2", []int{1, 2})
	d1 := b.AddDish("Dish 1", dec(t, "1"), dec(t, "100000"))
	d2 := b.AddDish("Dish 2", dec(t, "1"), dec(t, "140000"))
	if err := b.AssignGroupUnit(d1, g1); err != nil {
		t.Fatalf("AssignGroupUnit() error = %v", err)
	}
	if err := b.AssignGroupUnit(d2, g2); err != nil {
		t.Fatalf("AssignGroupUnit() error = %v", err)
	}

	got := RenderSummary(b, Settle(b))
	want := `🧮 Итоговый расчёт:
Без сервиса: 240 000 UZS
Сервис 12%: 28 800 UZS
💰 Итого: 268 800 UZS

👥 Разбивка по участникам:
1. User 1 — 56 000 UZS  (до сервиса: 50 000 UZS, +6 000 UZS)
2. User 2 — 134 400 UZS  (до сервиса: 120 000 UZS, +14 400 UZS)
3. User 3 — 78 400 UZS  (до сервиса: 70 000 UZS, +8 400 UZS)`
	if got != want {
		t.Errorf("RenderSummary() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderDishList(t *testing.T) {
	b := newTestBill(t, []string{"A"}, "0")
	b.AddDish("Чойхона комплект", dec(t, "2"), dec(t, "120000"))
	b.AddDish("Шашлык", dec(t, "1"), dec(t, "45000"))

	got := RenderDishList(b)
	want := "1. Чойхона комплект — 2 шт × 60 000 UZS = 120 000 UZS\n" +
		"2. Шашлык — 1 шт × 45 000 UZS = 45 000 UZS"
	if got != want {
		t.Errorf("RenderDishList() = %q, want %q", got, want)
	}
}

func TestRenderChoices(t *testing.T) {
	b := newTestBill(t, []string{"A", "B"}, "0")
	b.AddDish("Плов", dec(t, "3"), dec(t, "90000"))
	b.AddDish("Салат", dec(t, "1"), dec(t, "20000"))
	if err := b.AssignUnit(0, 0, dec(t, "2")); err != nil {
		t.Fatalf("AssignUnit() error = %v", err)
	}

	if got, want := RenderChoices(b, 0), "• Плов × 2"; got != want {
		t.Errorf("RenderChoices(0) = %q, want %q", got, want)
	}
	if got, want := RenderChoices(b, 1), "—"; got != want {
		t.Errorf("RenderChoices(1) = %q, want %q", got, want)
	}
}
