// meta/meta.go
package meta

// MaxSteps caps the actions taken in one episode so a penalized agent cannot
// loop forever.
const MaxSteps = 200

// DefaultEpisodes defines the number of episodes per agent in an experiment.
const DefaultEpisodes = 1000

// DefaultGoroutines defines the number of episode workers.
const DefaultGoroutines = 8

// DefaultSeed seeds worker dice and agents when the config leaves it unset.
const DefaultSeed = 1

// DefaultServerAddr is where the HTTP environment listens.
const DefaultServerAddr = ":8080"
