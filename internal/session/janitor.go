package session

import (
	"log"
	"time"
)

// TokenJanitor periodically sweeps expired web tokens out of a Manager.
type TokenJanitor struct {
	manager  *Manager
	stopChan chan struct{}
	ticker   *time.Ticker
	interval time.Duration
}

func NewTokenJanitor(m *Manager) *TokenJanitor {
	return &TokenJanitor{
		manager:  m,
		stopChan: make(chan struct{}),
		interval: time.Hour,
	}
}

func (j *TokenJanitor) Start() {
	if j == nil {
		return
	}
	j.ticker = time.NewTicker(j.interval)
	go j.loop()
}

func (j *TokenJanitor) Stop() {
	if j == nil {
		return
	}
	close(j.stopChan)
	if j.ticker != nil {
		j.ticker.Stop()
	}
}

func (j *TokenJanitor) loop() {
	for {
		select {
		case <-j.ticker.C:
			j.tick()
		case <-j.stopChan:
			return
		}
	}
}

func (j *TokenJanitor) tick() {
	if pruned := j.manager.PruneTokens(time.Now()); pruned > 0 {
		log.Printf("janitor: pruned %d expired web tokens", pruned)
	}
}
