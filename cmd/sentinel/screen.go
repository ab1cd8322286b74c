package main

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// screenService owns the tcell screen lifecycle
// Implements service.Service
type screenService struct {
	screen   tcell.Screen
	stopOnce sync.Once
}

func newScreenService() *screenService {
	return &screenService{}
}

func (s *screenService) Name() string           { return "screen" }
func (s *screenService) Dependencies() []string { return nil }

// Init creates the screen and switches the terminal into raw mode
func (s *screenService) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	s.screen = screen
	return nil
}

func (s *screenService) Start() error { return nil }

// Stop restores the terminal; PollEvent returns nil afterwards
func (s *screenService) Stop() error {
	s.stopOnce.Do(func() {
		if s.screen != nil {
			s.screen.Fini()
		}
	})
	return nil
}

// Fini lets the crash handler restore the terminal
func (s *screenService) Fini() {
	_ = s.Stop()
}

func (s *screenService) Screen() tcell.Screen {
	return s.screen
}
