package galaxy

import (
	"log/slog"

	"starforge-server/internal/procgen"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	logger.Debug("Initializing galaxy service")

	return &Service{
		logger: logger,
	}
}

// GenerateGalaxy derives a galaxy's metadata from its path. The galaxy
// stream consumes one draw for the name; systems within the galaxy derive
// their own seeds and never touch this stream.
func (s *Service) GenerateGalaxy(universeID int, masterSeed int32, galaxyIndex int) Galaxy {
	seed := procgen.DeriveSeed(masterSeed, procgen.GalaxyPath(galaxyIndex))
	stream := procgen.NewStream(seed)

	names := galaxyNames()
	name := names[int(stream.Next()*float64(len(names)))]

	return Galaxy{
		UniverseID:  universeID,
		GalaxyIndex: galaxyIndex,
		Seed:        seed,
		Name:        name,
	}
}

// galaxyNames returns the list of galaxy base names
func galaxyNames() []string {
	return []string{
		"Andromeda", "Centaurus", "Pegasus", "Cygnus", "Draco", "Phoenix",
		"Hydra", "Lyra", "Orion", "Perseus", "Cassiopeia", "Aquila",
	}
}
