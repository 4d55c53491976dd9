package services

import "sync"

// storeMu serializes mutating store operations. Counter roll-ups read a
// project, bump a counter in memory and write it back; without serialization
// two concurrent completions in the same project can both read the old
// counter and lose an increment. One process-wide mutex is enough at this
// scale.
var storeMu sync.Mutex
