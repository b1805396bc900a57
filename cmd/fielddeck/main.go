package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/fielddeck/content"
	"github.com/jask/fielddeck/core"
	"github.com/jask/fielddeck/deck"
	"github.com/jask/fielddeck/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	slides, renderers := content.Build(content.Options{
		MarkdownStyle: cfg.UI.MarkdownStyle,
	})
	nav := deck.NewNavigator(slides, cfg.Deck.StartIndex)
	keys := core.NewKeyRegistry(core.DefaultBindings())

	m := core.New(content.Title, nav, renderers, keys, cfg.Timer.DurationSeconds)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
