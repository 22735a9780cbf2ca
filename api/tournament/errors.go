/* errors.go
 * Contains the errors returned by the tournament package. Callers should compare against these with errors.Is
 * as most of them are wrapped with extra detail
 */

package tournament

import "errors"

var (
	// ErrInvalidTournamentConfig is returned by New when the name, roster or round count is unusable
	ErrInvalidTournamentConfig = errors.New("invalid tournament config")
	// ErrMaxRoundsReached is returned by AdvanceRound once every configured round has been started
	ErrMaxRoundsReached = errors.New("maximum number of rounds reached")
	// ErrInvalidPairing is returned when two players cannot be placed in a match together
	ErrInvalidPairing = errors.New("invalid pairing")
	// ErrTournamentNotComplete is returned by Winner before the final round has been reached
	ErrTournamentNotComplete = errors.New("tournament is not completed yet")
	// ErrInvalidOutcome is returned when a match result is not player1, player2 or draw
	ErrInvalidOutcome = errors.New("invalid match outcome")
	// ErrRoundSetupInProgress is returned if a round is advanced while another round is still being built
	ErrRoundSetupInProgress = errors.New("round setup already in progress")
	// ErrNoActiveRound is returned when a match of the current round is requested before round 1 exists
	ErrNoActiveRound = errors.New("no round has been played yet")
	// ErrMatchNotFound is returned when a match number is outside the current round
	ErrMatchNotFound = errors.New("match not found")
	// ErrInvalidState is returned by Restore when persisted round data breaks the round counter invariant
	ErrInvalidState = errors.New("invalid tournament state")
)
