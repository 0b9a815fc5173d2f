package enemies

import (
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
)

// StageCount is the number of stages with an enemy
const StageCount = 3

// Factory creates the enemy for a stage. It returns false once the stage
// index is past the last defined stage.
type Factory interface {
	Create(stage int) (Enemy, bool)
}

type stageFactory struct {
	idGen idgen.Generator
}

// NewFactory returns the standard stage roster: Level0, Level1, Level2
func NewFactory(idGen idgen.Generator) Factory {
	return &stageFactory{idGen: idGen}
}

// Create implements Factory
func (f *stageFactory) Create(stage int) (Enemy, bool) {
	switch stage {
	case 0:
		return NewLevel0(f.idGen.Generate()), true
	case 1:
		return NewLevel1(f.idGen.Generate()), true
	case 2:
		return NewLevel2(f.idGen.Generate()), true
	default:
		return nil, false
	}
}
