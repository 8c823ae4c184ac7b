package wmfrecord

import "errors"

// ErrShortRecord is returned by every Decode function when the supplied
// payload is too small for the fields it is expected to carry. It is
// always recoverable: the caller should skip the record (it already knows
// the record's declared size from the prologue) rather than abort the
// whole conversion.
var ErrShortRecord = errors.New("wmfrecord: short record")
