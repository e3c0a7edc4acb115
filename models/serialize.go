package models

// The JSON views below are what the API returns. Nullable columns stay
// pointers so they encode as null.

type UserJSON struct {
	ID           uint    `json:"id"`
	Username     string  `json:"username"`
	Firstname    *string `json:"firstname"`
	Lastname     *string `json:"lastname"`
	Email        string  `json:"email"`
	FollowingIDs []uint  `json:"following_ids"`
	FollowerIDs  []uint  `json:"follower_ids"`
}

type PostJSON struct {
	ID       uint          `json:"id"`
	UserID   uint          `json:"user_id"`
	Caption  *string       `json:"caption"`
	Media    []MediaJSON   `json:"media"`
	Comments []CommentJSON `json:"comments"`
}

type MediaJSON struct {
	ID     uint   `json:"id"`
	Type   string `json:"type"`
	URL    string `json:"url"`
	PostID uint   `json:"post_id"`
}

type CommentJSON struct {
	ID          uint   `json:"id"`
	CommentText string `json:"comment_text"`
	AuthorID    uint   `json:"author_id"`
	PostID      uint   `json:"post_id"`
}

type FollowerJSON struct {
	ID         uint `json:"id"`
	UserFromID uint `json:"user_from_id"`
	UserToID   uint `json:"user_to_id"`
}

// Serialize expects Following and Followers to be loaded.
func (u *User) Serialize() UserJSON {
	out := UserJSON{
		ID:           u.ID,
		Username:     u.Username,
		Firstname:    u.Firstname,
		Lastname:     u.Lastname,
		Email:        u.Email,
		FollowingIDs: make([]uint, 0, len(u.Following)),
		FollowerIDs:  make([]uint, 0, len(u.Followers)),
	}
	for _, f := range u.Following {
		out.FollowingIDs = append(out.FollowingIDs, f.UserToID)
	}
	for _, f := range u.Followers {
		out.FollowerIDs = append(out.FollowerIDs, f.UserFromID)
	}
	return out
}

// Serialize expects Media and Comments to be loaded.
func (p *Post) Serialize() PostJSON {
	out := PostJSON{
		ID:       p.ID,
		UserID:   p.UserID,
		Caption:  p.Caption,
		Media:    make([]MediaJSON, 0, len(p.Media)),
		Comments: make([]CommentJSON, 0, len(p.Comments)),
	}
	for i := range p.Media {
		out.Media = append(out.Media, p.Media[i].Serialize())
	}
	for i := range p.Comments {
		out.Comments = append(out.Comments, p.Comments[i].Serialize())
	}
	return out
}

func (m *Media) Serialize() MediaJSON {
	return MediaJSON{ID: m.ID, Type: m.Type, URL: m.URL, PostID: m.PostID}
}

func (c *Comment) Serialize() CommentJSON {
	return CommentJSON{ID: c.ID, CommentText: c.CommentText, AuthorID: c.AuthorID, PostID: c.PostID}
}

func (f *Follower) Serialize() FollowerJSON {
	return FollowerJSON{ID: f.ID, UserFromID: f.UserFromID, UserToID: f.UserToID}
}
