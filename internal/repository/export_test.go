package repository

var (
	NullableString    = nullableString
	NullableTime      = nullableTime
	ParseNullTime     = parseNullTime
	StringPtr         = stringPtr
	BoolToInt         = boolToInt
	EncodeJSON        = encodeJSON
	DecodeJSON        = decodeJSON
	FormatTime        = formatTime
	ParseTime         = parseTime
	IsUniqueViolation = isUniqueViolation
)
