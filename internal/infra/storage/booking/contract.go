package booking

import "time"

// Clock источник времени для UpdatedAt
type Clock func() time.Time
