package dto

type Bucket struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BucketList struct {
	Kind  string   `json:"kind"`
	Items []Bucket `json:"items"`
}

type Permissions struct {
	Kind        string   `json:"kind"`
	Permissions []string `json:"permissions"`
}
