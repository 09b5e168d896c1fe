package types

type UploadAudioResponse struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Data    *UploadAudioData `json:"data,omitempty"`
}

type UploadAudioData struct {
	Url         string `json:"url"`
	Filename    string `json:"filename"`
	Path        string `json:"path"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

type RecentUploadsRequest struct {
	UserId string `form:"user_id,optional"`
}

type RecentUploadsResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    []UploadRecord `json:"data"`
}

type UploadRecord struct {
	Url         string `json:"url"`
	Filename    string `json:"filename"`
	Path        string `json:"path"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	UploadedAt  string `json:"uploaded_at"`
}

type IndexResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

type HelloResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Service string `json:"service"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type StorageCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Bucket  string `json:"bucket"`
}
