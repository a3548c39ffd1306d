package community

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/fitcircle/internal/clock"
	"github.com/phrazzld/fitcircle/internal/domain"
	"github.com/phrazzld/fitcircle/internal/events"
	"github.com/phrazzld/fitcircle/internal/platform/logger"
)

// Community holds members, posts and the observers interested in changes to
// either. Members are identified by user ID and posts by post ID.
//
// Mutations are applied under a lock which is released before observers are
// notified, so observers may call back into the Community. Notification is
// still synchronous: every observer has run when the mutating call returns.
type Community struct {
	mu        sync.RWMutex
	members   []*domain.User
	memberIDs map[uuid.UUID]struct{}
	posts     []*Post

	subject *events.Subject
	clock   clock.Clock
	logger  *slog.Logger
}

// Option configures a Community.
type Option func(*Community)

// WithClock sets the time source for post creation and event timestamps.
func WithClock(c clock.Clock) Option {
	return func(cm *Community) {
		cm.clock = clock.OrReal(c)
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(cm *Community) {
		cm.logger = logger.OrDefault(l)
	}
}

// New creates an empty Community.
func New(opts ...Option) *Community {
	c := &Community{
		members:   make([]*domain.User, 0),
		memberIDs: make(map[uuid.UUID]struct{}),
		posts:     make([]*Post, 0),
		clock:     clock.Real{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "community")
	c.subject = events.NewSubject(c.logger)
	return c
}

// AddMember adds user if they are not already a member and reports whether
// anything changed. Observers receive events.MemberAdded only on insertion.
func (c *Community) AddMember(ctx context.Context, user *domain.User) (bool, error) {
	if user == nil {
		return false, nil
	}

	c.mu.Lock()
	if _, ok := c.memberIDs[user.ID]; ok {
		c.mu.Unlock()
		return false, nil
	}
	c.memberIDs[user.ID] = struct{}{}
	c.members = append(c.members, user)
	count := len(c.members)
	c.mu.Unlock()

	c.logger.Debug("member added",
		"user_id", user.ID,
		"username", user.Username,
		"member_count", count)

	return true, c.notify(ctx, events.MemberAdded, user)
}

// RemoveMember removes user and reports whether they were a member.
// Posts the user already authored stay in the feed.
func (c *Community) RemoveMember(ctx context.Context, user *domain.User) (bool, error) {
	if user == nil {
		return false, nil
	}

	c.mu.Lock()
	if _, ok := c.memberIDs[user.ID]; !ok {
		c.mu.Unlock()
		c.logger.Debug("remove skipped, not a member", "user_id", user.ID)
		return false, nil
	}
	delete(c.memberIDs, user.ID)
	for i, m := range c.members {
		if m.ID == user.ID {
			c.members = append(c.members[:i], c.members[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	c.logger.Debug("member removed", "user_id", user.ID, "username", user.Username)

	return true, c.notify(ctx, events.MemberRemoved, user)
}

// IsMember reports whether user currently belongs to the community.
func (c *Community) IsMember(user *domain.User) bool {
	if user == nil {
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.memberIDs[user.ID]
	return ok
}

// Members returns the current members in the order they joined.
func (c *Community) Members() []*domain.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*domain.User, len(c.members))
	copy(out, c.members)
	return out
}

// CreatePost publishes content by author. It returns a nil post and a nil
// error when author is not a member.
func (c *Community) CreatePost(ctx context.Context, author *domain.User, content string) (*Post, error) {
	c.mu.Lock()
	if author == nil {
		c.mu.Unlock()
		return nil, nil
	}
	if _, ok := c.memberIDs[author.ID]; !ok {
		c.mu.Unlock()
		c.logger.Warn("post rejected, author is not a member",
			"user_id", author.ID,
			"username", author.Username)
		return nil, nil
	}
	post := newPost(author, content, c.clock.Now())
	c.posts = append(c.posts, post)
	c.mu.Unlock()

	c.logger.Debug("post created", "post_id", post.ID, "user_id", author.ID)

	return post, c.notify(ctx, events.PostCreated, post)
}

// DeletePost removes post from the feed and reports whether it was present.
func (c *Community) DeletePost(ctx context.Context, post *Post) (bool, error) {
	if post == nil {
		return false, nil
	}

	c.mu.Lock()
	removed := false
	for i, p := range c.posts {
		if p.ID == post.ID {
			c.posts = append(c.posts[:i], c.posts[i+1:]...)
			removed = true
			break
		}
	}
	c.mu.Unlock()

	if !removed {
		c.logger.Debug("delete skipped, unknown post", "post_id", post.ID)
		return false, nil
	}

	c.logger.Debug("post deleted", "post_id", post.ID)

	return true, c.notify(ctx, events.PostDeleted, post)
}

// Posts returns the posts in creation order. The slice is a copy; the posts
// themselves are shared, so likes and comments added through them are visible
// to every holder.
func (c *Community) Posts() []*Post {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Post, len(c.posts))
	copy(out, c.posts)
	return out
}

// Post looks up a post by ID.
func (c *Community) Post(id uuid.UUID) (*Post, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.posts {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// AddObserver subscribes o to community events. Subscribing the same
// observer twice is a no-op.
func (c *Community) AddObserver(o events.Observer) bool {
	return c.subject.AddObserver(o)
}

// RemoveObserver unsubscribes o.
func (c *Community) RemoveObserver(o events.Observer) bool {
	return c.subject.RemoveObserver(o)
}

func (c *Community) notify(ctx context.Context, eventType events.Type, data interface{}) error {
	return c.subject.Notify(ctx, events.NewEvent(eventType, data, c.clock.Now()))
}
