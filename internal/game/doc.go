// Package game implements the sandwich-building rounds.
//
// A [Session] holds the whole game: the round clock, the bottom slice of
// bread, the ingredients dropped so far and, once the last round ends, the
// top slice. Callers advance it explicitly with [Session.Tick] (usually from
// [RunClock]) and feed it player actions through [Session.Start] and
// [Session.Drop].
//
// # Rounds
//
// A session moves through these phases:
//
//	Waiting --Tick--> Armed --Start--> Running --Tick x N--> Ending --Tick--> Waiting
//	                                                                   \--> Finished (last round)
//
// One ingredient may be dropped per round. Dropping skips straight to the
// end of the round.
//
// # World
//
// The world is a Width×Height box with y growing downward. Ingredients are
// rigid polygons from the silhouette extractor. They fall straight down and
// come to rest on the first surface below them: the bread, an earlier
// ingredient or the floor. A round scores 1 when the centre of its
// ingredient lies strictly within the bread's horizontal extent.
//
// Session is safe for concurrent use.
package game
