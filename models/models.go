package models

// User owns its posts and authored comments. Following and Followers are the
// outgoing and incoming follow edges.
type User struct {
	ID        uint    `gorm:"primaryKey"`
	Username  string  `gorm:"type:varchar(40);uniqueIndex;not null"`
	Firstname *string `gorm:"type:varchar(80)"`
	Lastname  *string `gorm:"type:varchar(80)"`
	Email     string  `gorm:"type:varchar(120);uniqueIndex;not null"`

	Posts     []Post     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Comments  []Comment  `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Following []Follower `gorm:"foreignKey:UserFromID;constraint:OnDelete:CASCADE"`
	Followers []Follower `gorm:"foreignKey:UserToID;constraint:OnDelete:CASCADE"`
}

type Post struct {
	ID      uint    `gorm:"primaryKey"`
	UserID  uint    `gorm:"not null;index"`
	Caption *string `gorm:"type:varchar(2200)"`

	Media    []Media   `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// Media type is "image" or "video". Nothing enforces that.
type Media struct {
	ID     uint   `gorm:"primaryKey"`
	Type   string `gorm:"type:varchar(20);not null"`
	URL    string `gorm:"type:varchar(255);not null"`
	PostID uint   `gorm:"not null;index"`
}

type Comment struct {
	ID          uint   `gorm:"primaryKey"`
	CommentText string `gorm:"type:varchar(1000);not null"`
	AuthorID    uint   `gorm:"not null;index"`
	PostID      uint   `gorm:"not null;index"`
}

// Follower is a directed edge from one user to another. A pair appears at most once.
type Follower struct {
	ID         uint `gorm:"primaryKey"`
	UserFromID uint `gorm:"not null;uniqueIndex:uq_follow_pair"`
	UserToID   uint `gorm:"not null;uniqueIndex:uq_follow_pair;index"`
}

func (User) TableName() string     { return "users" }
func (Post) TableName() string     { return "posts" }
func (Media) TableName() string    { return "media" }
func (Comment) TableName() string  { return "comments" }
func (Follower) TableName() string { return "followers" }

// All lists every entity in dependency order, for AutoMigrate.
func All() []any {
	return []any{&User{}, &Post{}, &Media{}, &Comment{}, &Follower{}}
}
