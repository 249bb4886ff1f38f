package cloudinary

// UploadResult результат загрузки изображения
type UploadResult struct {
	URL      string
	PublicID string
	Bytes    int64
}
