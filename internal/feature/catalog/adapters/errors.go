package adapters

import "errors"

// errRowVanished is returned when the row just inserted cannot be read back.
var errRowVanished = errors.New("inserted row could not be read back")
