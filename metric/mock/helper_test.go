package mock

import "time"

var timeZero = time.Now().Add(-time.Second)
