package dto

// CreateSpotRequest - запрос на создание спота
type CreateSpotRequest struct {
	Title     string  `json:"title" form:"title" validate:"required,min=2,max=100"`
	Category  string  `json:"category" form:"category" validate:"required,oneof=skatepark rail stairs ledge flatbar park box"`
	Latitude  float64 `json:"latitude" form:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" form:"longitude" validate:"min=-180,max=180"`
}

// AttendRequest - запрос на отметку посещения спота
type AttendRequest struct {
	StartTime       string  `json:"start_time" validate:"required"`
	DurationMinutes float64 `json:"duration_minutes" validate:"required,gt=0,max=1440"`
}

// DiscoveryRequest - запрос поисковой выдачи спотов
type DiscoveryRequest struct {
	Search       string   `json:"search" validate:"omitempty,max=100"`
	Category     string   `json:"category" validate:"omitempty"`
	City         string   `json:"city" validate:"omitempty,max=100"`
	Status       string   `json:"status" validate:"omitempty,oneof=all active scheduled popular empty"`
	RadiusMeters float64  `json:"radius_meters" validate:"omitempty,min=50,max=100000"`
	Page         int      `json:"page" validate:"omitempty,min=1"`
	Lat          *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lon          *float64 `json:"lon" validate:"omitempty,min=-180,max=180"`
}

// CreateItemRequest - запрос на выставление товара
type CreateItemRequest struct {
	Title       string  `json:"title" form:"title" validate:"required,min=2,max=100"`
	Description string  `json:"description" form:"description" validate:"max=2000"`
	Type        string  `json:"type" form:"type" validate:"required,oneof=board wheels trucks bearings griptape hardware tools accessories clothing other"`
	Condition   string  `json:"condition" form:"condition" validate:"required,oneof=new like_new good fair poor"`
	Price       float64 `json:"price" form:"price" validate:"required,gt=0"`
}

// CreateCommentRequest - запрос на добавление комментария
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

// SubmitTrickRequest - заявка с трюком на турнир
type SubmitTrickRequest struct {
	TrickName string `json:"trick_name" validate:"required,min=2,max=100"`
	VideoURL  string `json:"video_url" validate:"required,url"`
}

// ReviewSubmissionRequest - решение модератора по заявке
type ReviewSubmissionRequest struct {
	Approve bool `json:"approve"`
	Score   int  `json:"score" validate:"omitempty,min=0,max=100"`
}
