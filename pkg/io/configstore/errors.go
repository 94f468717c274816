package configstore

import "errors"

// ErrPermissionDenied is returned when the record cannot be created, modified or removed
// due to access rights.
var ErrPermissionDenied = errors.New("no permission to create or modify the registry config")
