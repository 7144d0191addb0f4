package usecase

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"net/url"

	"gcsfake/internal/domain/dto"
	"gcsfake/pkg/fakegcs"
)

const (
	objectKind      = "storage#object"
	objectsKind     = "storage#objects"
	bucketKind      = "storage#bucket"
	bucketsKind     = "storage#buckets"
	permissionsKind = "storage#testIamPermissionsResponse"
	storageClass    = "STANDARD"
)

func toObject(attrs fakegcs.Attrs, address string) dto.Object {
	crc := make([]byte, 4)
	binary.BigEndian.PutUint32(crc, attrs.CRC32C)

	path := fmt.Sprintf("b/%s/o/%s", url.PathEscape(attrs.Bucket), url.PathEscape(attrs.Name))

	return dto.Object{
		Kind:           objectKind,
		ID:             fmt.Sprintf("%s/%s/%d", attrs.Bucket, attrs.Name, attrs.Generation),
		SelfLink:       fmt.Sprintf("%s/storage/v1/%s", address, path),
		MediaLink:      fmt.Sprintf("%s/download/storage/v1/%s?generation=%d&alt=media", address, path, attrs.Generation),
		Name:           attrs.Name,
		Bucket:         attrs.Bucket,
		Generation:     attrs.Generation,
		Metageneration: attrs.Metageneration,
		ContentType:    attrs.ContentType,
		StorageClass:   storageClass,
		Size:           attrs.Size,
		MD5Hash:        base64.StdEncoding.EncodeToString(attrs.MD5),
		CRC32C:         base64.StdEncoding.EncodeToString(crc),
		ETag:           attrs.ETag,
		TimeCreated:    attrs.Created,
		Updated:        attrs.Updated,
	}
}
