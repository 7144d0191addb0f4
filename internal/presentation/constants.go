package presentation

const (
	BucketParam = "bucket"
	ObjectParam = "object"
	TypeKey     = "Content-Type"
	ReasonTag   = "X-Reason"

	PrefixQuery      = "prefix"
	StartOffsetQuery = "startOffset"
	EndOffsetQuery   = "endOffset"
	MaxResultsQuery  = "maxResults"
	PageTokenQuery   = "pageToken"
	PermissionsQuery = "permissions"
	AltQuery         = "alt"
	NameQuery        = "name"
	UploadTypeQuery  = "uploadType"

	AltMedia        = "media"
	UploadTypeMedia = "media"

	GenerationHeader = "X-Goog-Generation"
)
