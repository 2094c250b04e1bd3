package awx

// Page is the envelope AWX wraps list responses in.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type Label struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Job struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Status  string `json:"status" yaml:"status"`
	JobTags string `json:"job_tags" yaml:"jobTags"`
	Created string `json:"created" yaml:"created"`
}

type JobTemplate struct {
	ID              int    `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	AskTagsOnLaunch bool   `json:"ask_tags_on_launch" yaml:"askTagsOnLaunch"`
	JobTags         string `json:"job_tags" yaml:"jobTags"`
}
