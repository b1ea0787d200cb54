package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// StageDef is one frame of the spaceman drawing, loaded from JSON.
type StageDef struct {
	Color string   `json:"color"` // Hex color code (e.g., "#FF0000")
	Lines []string `json:"lines"` // Rows of the drawing, top to bottom
}

// TCellColor returns the color as a tcell.Color.
func (s *StageDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// ArtFile represents the structure of spaceman.json.
type ArtFile struct {
	Stages []StageDef `json:"stages"`
}

// Art holds the drawing stages, from an empty launch pad to a complete
// spaceman. The final stage is shown when a round is lost.
type Art struct {
	stages []StageDef
}

// NewArt creates an Art from loaded stages.
func NewArt(stages []StageDef) *Art {
	return &Art{stages: stages}
}

// LoadArt loads the drawing from the embedded spaceman.json.
func LoadArt() (*Art, error) {
	file, err := Load[ArtFile]("spaceman.json")
	if err != nil {
		return nil, err
	}
	if len(file.Stages) == 0 {
		return nil, errors.New("no stages loaded from spaceman.json")
	}
	return NewArt(file.Stages), nil
}

// MustLoadArt loads the drawing, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoadArt() *Art {
	art, err := LoadArt()
	if err != nil {
		panic(err)
	}
	return art
}

// Stage returns the frame for incorrect misses out of limit. Misses are
// spread evenly over the frames so every word length ends on the last one.
func (a *Art) Stage(incorrect, limit int) *StageDef {
	if len(a.stages) == 0 {
		return nil
	}
	last := len(a.stages) - 1
	if limit <= 0 || incorrect >= limit {
		return &a.stages[last]
	}
	if incorrect <= 0 {
		return &a.stages[0]
	}
	return &a.stages[incorrect*last/limit]
}

// Count returns the number of stages.
func (a *Art) Count() int {
	return len(a.stages)
}
