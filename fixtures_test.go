package enums

// Shared test fixtures. Registration is process-global, so every enum
// used across the test files is declared and registered here exactly once.

// Color is the basic scenario type: three constants, uint8-backed.
type Color uint8

const (
	Red Color = iota
	Green
	Blue
)

// Delta exercises signed underlying types.
type Delta int16

const (
	DeltaNeg  Delta = -5
	DeltaZero Delta = 0
	DeltaPos  Delta = 7
)

// Perm is a flags enum.
type Perm uint8

const (
	PermNone  Perm = 0
	PermRead  Perm = 1
	PermWrite Perm = 2
	PermExec  Perm = 4
)

// Level has two names aliasing the same value.
type Level uint32

const (
	LevelDefault Level = 0
	LevelZero    Level = 0
	LevelHigh    Level = 10
)

// Orphan is deliberately never registered.
type Orphan int8

func init() {
	Register([]Constant[Color]{
		{Name: "Red", Value: Red},
		{Name: "Green", Value: Green},
		{Name: "Blue", Value: Blue},
	})

	Register([]Constant[Delta]{
		{Name: "DeltaNeg", Value: DeltaNeg},
		{Name: "DeltaZero", Value: DeltaZero},
		{Name: "DeltaPos", Value: DeltaPos},
	})

	Register([]Constant[Perm]{
		{Name: "None", Value: PermNone},
		{Name: "Read", Value: PermRead},
		{Name: "Write", Value: PermWrite},
		{Name: "Exec", Value: PermExec},
	}, WithFlags())

	Register([]Constant[Level]{
		{Name: "Default", Value: LevelDefault},
		{Name: "Zero", Value: LevelZero},
		{Name: "High", Value: LevelHigh},
	})
}
