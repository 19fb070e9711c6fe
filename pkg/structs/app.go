package structs

import "time"

type App struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Maintenance bool      `json:"maintenance"`
	WebUrl      string    `json:"web_url"`
	CreatedAt   time.Time `json:"created_at"`
	ReleasedAt  time.Time `json:"released_at"`
}
