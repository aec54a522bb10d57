package export

import "errors"

// ErrExport wraps every failure of this package, for errors.Is matching.
var ErrExport = errors.New("export failed")
