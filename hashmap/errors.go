package hashmap

import "github.com/zeebo/errs/v2"

// ErrKeyNotFound is returned by At for keys with no record.
var ErrKeyNotFound = errs.Errorf("key not found")
