package model

// Video represents a short video document in the video collection. Only the
// remote URL and metadata are stored; the media itself lives elsewhere.
type Video struct {
	Author       string   `json:"author" bson:"author"`
	Caption      *string  `json:"caption,omitempty" bson:"caption,omitempty"`
	VideoURL     string   `json:"video_url" bson:"video_url"`
	ThumbnailURL *string  `json:"thumbnail_url,omitempty" bson:"thumbnail_url,omitempty"`
	Likes        *int     `json:"likes,omitempty" bson:"likes"`
	Tags         []string `json:"tags,omitempty" bson:"tags"`
}

func (v *Video) Validate() error {
	if err := requireString("author", v.Author, 3, 32); err != nil {
		return err
	}
	if err := optionalString("caption", v.Caption, 300); err != nil {
		return err
	}
	if err := requireURL("video_url", v.VideoURL); err != nil {
		return err
	}
	if err := optionalURL("thumbnail_url", v.ThumbnailURL); err != nil {
		return err
	}
	if v.Likes == nil {
		likes := 0
		v.Likes = &likes
	} else if *v.Likes < 0 {
		return invalid("likes", ReasonRange)
	}
	if v.Tags == nil {
		v.Tags = []string{}
	}
	return nil
}
