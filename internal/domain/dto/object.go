package dto

import "time"

// Object is the JSON resource describing a stored blob.
type Object struct {
	Kind           string    `json:"kind"`
	ID             string    `json:"id"`
	SelfLink       string    `json:"selfLink"`
	MediaLink      string    `json:"mediaLink"`
	Name           string    `json:"name"`
	Bucket         string    `json:"bucket"`
	Generation     int64     `json:"generation,string"`
	Metageneration int64     `json:"metageneration,string"`
	ContentType    string    `json:"contentType"`
	StorageClass   string    `json:"storageClass"`
	Size           int64     `json:"size,string"`
	MD5Hash        string    `json:"md5Hash"`
	CRC32C         string    `json:"crc32c"`
	ETag           string    `json:"etag"`
	TimeCreated    time.Time `json:"timeCreated"`
	Updated        time.Time `json:"updated"`
}

type ObjectList struct {
	Kind          string   `json:"kind"`
	Items         []Object `json:"items"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
}

// ListParams are the object listing query parameters.
type ListParams struct {
	Prefix      string
	StartOffset string
	EndOffset   string
	PageToken   string
	MaxResults  int
}
