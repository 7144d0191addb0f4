package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gcsfake/internal/application/usecase"
	"gcsfake/internal/domain/repository/storage"
)

// Handlers groups the storage API handlers served over one store.
type Handlers struct {
	Buckets     *BucketHandler
	List        *ListHandler
	Get         *GetHandler
	Upload      *UploadHandler
	Permissions *PermissionHandler
}

// NewHandlers wires the use cases over store. address is the public base
// URL used in object links.
func NewHandlers(store storage.Store, address string) Handlers {
	return Handlers{
		Buckets:     NewBucketHandler(usecase.NewBucketManager(store)),
		List:        NewListHandler(usecase.NewLister(store, address)),
		Get:         NewGetHandler(usecase.NewGetter(store, address)),
		Upload:      NewUploadHandler(usecase.NewUploader(store, address)),
		Permissions: NewPermissionHandler(usecase.NewPermissionTester(store)),
	}
}

// Register adds the storage API routes to e.
func (h Handlers) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/storage/v1/b", h.Buckets.HandleList)
	e.POST("/storage/v1/b", h.Buckets.HandleCreate)
	e.GET("/storage/v1/b/:bucket/o", h.List.HandleList)
	e.GET("/storage/v1/b/:bucket/o/:object", h.Get.HandleGet)
	e.GET("/storage/v1/b/:bucket/iam/testPermissions", h.Permissions.HandleTest)
	e.GET("/download/storage/v1/b/:bucket/o/:object", h.Get.HandleDownload)
	e.POST("/upload/storage/v1/b/:bucket/o", h.Upload.HandleUpload)
}
