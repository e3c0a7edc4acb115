package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUserSerializeFollowIDs(t *testing.T) {
	u := User{
		ID:       1,
		Username: "ana",
		Email:    "ana@x.com",
		Following: []Follower{
			{ID: 1, UserFromID: 1, UserToID: 2},
			{ID: 2, UserFromID: 1, UserToID: 3},
		},
		Followers: []Follower{{ID: 3, UserFromID: 4, UserToID: 1}},
	}

	got := u.Serialize()
	if len(got.FollowingIDs) != 2 || got.FollowingIDs[0] != 2 || got.FollowingIDs[1] != 3 {
		t.Fatalf("following_ids = %v, want [2 3]", got.FollowingIDs)
	}
	if len(got.FollowerIDs) != 1 || got.FollowerIDs[0] != 4 {
		t.Fatalf("follower_ids = %v, want [4]", got.FollowerIDs)
	}
}

func TestUserSerializeEmptyListsAndNulls(t *testing.T) {
	u := User{ID: 7, Username: "ana", Email: "ana@x.com"}

	b, err := json.Marshal(u.Serialize())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(b)
	for _, want := range []string{
		`"following_ids":[]`,
		`"follower_ids":[]`,
		`"firstname":null`,
		`"lastname":null`,
		`"username":"ana"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body %s missing %s", body, want)
		}
	}
}

func TestPostSerializeIncludesEveryChild(t *testing.T) {
	caption := "sunset"
	p := Post{
		ID:      3,
		UserID:  1,
		Caption: &caption,
		Media: []Media{
			{ID: 1, Type: "image", URL: "http://a", PostID: 3},
			{ID: 2, Type: "video", URL: "http://b", PostID: 3},
			{ID: 3, Type: "image", URL: "http://c", PostID: 3},
		},
		Comments: []Comment{{ID: 9, CommentText: "nice", AuthorID: 2, PostID: 3}},
	}

	got := p.Serialize()
	if len(got.Media) != 3 {
		t.Fatalf("media len = %d, want 3", len(got.Media))
	}
	for i, m := range got.Media {
		if m.ID != p.Media[i].ID || m.PostID != 3 {
			t.Fatalf("media[%d] = %+v, want id %d post 3", i, m, p.Media[i].ID)
		}
	}
	if len(got.Comments) != 1 || got.Comments[0].CommentText != "nice" {
		t.Fatalf("comments = %+v", got.Comments)
	}
	if got.Caption == nil || *got.Caption != "sunset" {
		t.Fatalf("caption = %v, want sunset", got.Caption)
	}
}

func TestPostSerializeWithoutChildren(t *testing.T) {
	p := Post{ID: 1, UserID: 1}

	b, err := json.Marshal(p.Serialize())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":1,"user_id":1,"caption":null,"media":[],"comments":[]}`
	if string(b) != want {
		t.Fatalf("body = %s, want %s", b, want)
	}
}

func TestFollowerSerialize(t *testing.T) {
	f := Follower{ID: 5, UserFromID: 1, UserToID: 2}

	b, err := json.Marshal(f.Serialize())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":5,"user_from_id":1,"user_to_id":2}`
	if string(b) != want {
		t.Fatalf("body = %s, want %s", b, want)
	}
}
