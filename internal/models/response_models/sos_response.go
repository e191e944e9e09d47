package response_models

type SOSCreated struct {
	SOSID     string `json:"sos_id"`
	CreatedAt string `json:"created_at"`
}

type AudioAttached struct {
	AudioID string `json:"audio_id"`
	URL     string `json:"url"`
}

type ActiveSOS struct {
	SOSID           string   `json:"sos_id"`
	TouristUsername string   `json:"tourist_username"`
	TouristFullName string   `json:"tourist_full_name"`
	CreatedAt       string   `json:"created_at"`
	Lat             *float64 `json:"lat"`
	Lon             *float64 `json:"lon"`
	AudioURLs       []string `json:"audio_urls"`
}
