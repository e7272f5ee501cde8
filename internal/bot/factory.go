package bot

import (
	"fmt"
)

// NewBrain creates the decision policy for the given difficulty level.
func NewBrain(level Level) (Brain, error) {
	switch level {
	case LevelEasy:
		return &EasyBrain{}, nil
	case LevelMedium:
		return &MediumBrain{}, nil
	case LevelHard:
		return &HardBrain{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}
