package community

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/fitcircle/internal/domain"
)

// DefaultTimeLayout formats post creation times in Details.
const DefaultTimeLayout = "2006/1/2 15:04:05"

// Comment is a single reply on a post.
type Comment struct {
	User *domain.User `json:"user"`
	Text string       `json:"comment"`
}

// Post is an entry in the community feed. Author, Content and CreatedAt are
// fixed at creation; likes and comments only grow.
type Post struct {
	ID        uuid.UUID    `json:"id"`
	Author    *domain.User `json:"author"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`

	mu       sync.Mutex
	likes    int
	comments []Comment
}

func newPost(author *domain.User, content string, now time.Time) *Post {
	return &Post{
		ID:        uuid.New(),
		Author:    author,
		Content:   content,
		CreatedAt: now,
		comments:  make([]Comment, 0),
	}
}

// AddLike increments the like counter. Repeated likes from the same user
// are not de-duplicated.
func (p *Post) AddLike() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.likes++
}

// Likes returns the number of likes.
func (p *Post) Likes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.likes
}

// AddComment appends a comment by user.
func (p *Post) AddComment(user *domain.User, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.comments = append(p.comments, Comment{User: user, Text: text})
}

// Comments returns a copy of the comments in the order they were added.
func (p *Post) Comments() []Comment {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Comment, len(p.comments))
	copy(out, p.comments)
	return out
}

// Details renders the post as text: author, content, creation time, likes
// and one "<username>: <comment>" line per comment. An empty layout selects
// DefaultTimeLayout.
func (p *Post) Details(layout string) string {
	if layout == "" {
		layout = DefaultTimeLayout
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var comments strings.Builder
	for _, c := range p.comments {
		fmt.Fprintf(&comments, "%s: %s\n", username(c.User), c.Text)
	}

	return fmt.Sprintf("Author: %s\n"+
		"Content: %s\n"+
		"Created At: %s\n"+
		"Likes: %d\n"+
		"Comments:\n%s",
		username(p.Author),
		p.Content,
		p.CreatedAt.Format(layout),
		p.likes,
		comments.String())
}

func username(u *domain.User) string {
	if u == nil {
		return ""
	}
	return u.Username
}
