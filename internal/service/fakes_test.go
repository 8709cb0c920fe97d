package service

import (
	"context"
	"sort"
	"strings"

	"Quill/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// 内存版仓储，行为对齐 repository 包的 Mongo 实现

func duplicateKeyError() error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
}

type fakeUserRepo struct {
	users []*model.User

	// forceDuplicateOnCreate 模拟预检通过后插入时撞唯一索引
	forceDuplicateOnCreate bool
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	if f.forceDuplicateOnCreate {
		return duplicateKeyError()
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return duplicateKeyError()
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUsersByIDs(_ context.Context, ids []primitive.ObjectID) ([]*model.User, error) {
	var users []*model.User
	for _, u := range f.users {
		for _, id := range ids {
			if u.ID == id {
				found := *u
				users = append(users, &found)
				break
			}
		}
	}
	return users, nil
}

func (f *fakeUserRepo) FindOneByName(_ context.Context, name string) (*model.User, error) {
	needle := strings.ToLower(name)
	for _, u := range f.users {
		if strings.Contains(strings.ToLower(u.FirstName), needle) ||
			strings.Contains(strings.ToLower(u.LastName), needle) {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

type fakePostRepo struct {
	posts []*model.Post

	lastFilter bson.M
	lastSort   bson.D
	lastSkip   int64
	lastLimit  int64
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	stored := *post
	f.posts = append(f.posts, &stored)
	return nil
}

func (f *fakePostRepo) GetOwned(_ context.Context, id, author primitive.ObjectID) (*model.Post, error) {
	for _, p := range f.posts {
		if p.ID == id && p.Author == author {
			found := *p
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakePostRepo) UpdateOwned(_ context.Context, id, author primitive.ObjectID, set bson.M) (*model.Post, error) {
	for _, p := range f.posts {
		if p.ID != id || p.Author != author {
			continue
		}
		for key, value := range set {
			switch key {
			case "title":
				p.Title = value.(string)
			case "description":
				p.Description = value.(string)
			case "tags":
				p.Tags = value.([]string)
			case "body":
				p.Body = value.(string)
			case "reading_time":
				p.ReadingTime = value.(int)
			case "state":
				p.State = value.(string)
			}
		}
		found := *p
		return &found, nil
	}
	return nil, nil
}

func (f *fakePostRepo) DeleteOwned(_ context.Context, id, author primitive.ObjectID) (*model.Post, error) {
	for i, p := range f.posts {
		if p.ID == id && p.Author == author {
			found := *p
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakePostRepo) GetPublishedAndIncrementRead(_ context.Context, id primitive.ObjectID) (*model.Post, error) {
	for _, p := range f.posts {
		if p.ID == id && p.State == model.StatePublished {
			p.ReadCount++
			found := *p
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakePostRepo) FindPage(_ context.Context, filter bson.M, sortSpec bson.D, skip, limit int64) ([]*model.Post, error) {
	f.lastFilter = filter
	f.lastSort = sortSpec
	f.lastSkip = skip
	f.lastLimit = limit

	var matched []*model.Post
	for _, p := range f.posts {
		if matchesFilter(filter, p) {
			found := *p
			matched = append(matched, &found)
		}
	}

	if len(sortSpec) > 0 {
		field := sortSpec[0].Key
		asc := sortSpec[0].Value.(int) == 1
		sort.SliceStable(matched, func(i, j int) bool {
			less := false
			switch field {
			case "read_count":
				less = matched[i].ReadCount < matched[j].ReadCount
			case "reading_time":
				less = matched[i].ReadingTime < matched[j].ReadingTime
			default:
				less = matched[i].CreatedAt.Before(matched[j].CreatedAt)
			}
			if asc {
				return less
			}
			return !less
		})
	}

	if skip >= int64(len(matched)) {
		return nil, nil
	}
	matched = matched[skip:]
	if int64(len(matched)) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakePostRepo) CountPosts(_ context.Context, filter bson.M) (int64, error) {
	var count int64
	for _, p := range f.posts {
		if matchesFilter(filter, p) {
			count++
		}
	}
	return count, nil
}

func matchesFilter(filter bson.M, p *model.Post) bool {
	for key, value := range filter {
		switch key {
		case "state":
			if p.State != value.(string) {
				return false
			}
		case "author":
			if p.Author != value.(primitive.ObjectID) {
				return false
			}
		case "title":
			pattern := value.(primitive.Regex)
			if !strings.Contains(strings.ToLower(p.Title), strings.ToLower(pattern.Pattern)) {
				return false
			}
		case "tags":
			wanted := value.(bson.M)["$in"].([]string)
			if !anyTagIn(p.Tags, wanted) {
				return false
			}
		}
	}
	return true
}

func anyTagIn(tags, wanted []string) bool {
	for _, tag := range tags {
		for _, w := range wanted {
			if tag == w {
				return true
			}
		}
	}
	return false
}
