package graph

import (
	"errors"

	"inkwell/models"

	"github.com/graphql-go/graphql"
)

var taskStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "TaskStatus",
	Values: graphql.EnumValueConfigMap{
		"pending":     &graphql.EnumValueConfig{Value: "pending"},
		"in_progress": &graphql.EnumValueConfig{Value: "in_progress"},
		"completed":   &graphql.EnumValueConfig{Value: "completed"},
	},
})

var taskPriorityEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "TaskPriority",
	Values: graphql.EnumValueConfigMap{
		"low":    &graphql.EnumValueConfig{Value: "low"},
		"medium": &graphql.EnumValueConfig{Value: "medium"},
		"high":   &graphql.EnumValueConfig{Value: "high"},
	},
})

// buildTypes creates the object types up front, then attaches the relation
// fields. User.posts and Post.author reference each other, so the relations
// cannot be declared inline.
func (b *schemaBuilder) buildTypes() {
	b.userType = b.buildUserType()
	b.postType = b.buildPostType()
	b.taskType = b.buildTaskType()

	b.userType.AddFieldConfig("posts", &graphql.Field{
		Type: graphql.NewList(b.postType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user := p.Source.(*models.User)
			return b.users.Posts(p.Context, user.ID)
		},
	})

	b.postType.AddFieldConfig("author", &graphql.Field{
		Type: b.userType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			post := p.Source.(*models.Post)
			author, err := b.posts.Author(p.Context, post)
			if err != nil {
				// A dangling author reference resolves to null, not an error.
				var notFound *models.NotFoundError
				if errors.As(err, &notFound) {
					return nil, nil
				}
				return nil, err
			}
			return author, nil
		},
	})

	b.taskType.AddFieldConfig("user", &graphql.Field{
		Type: b.userType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			task := p.Source.(*models.Task)
			user, err := b.tasks.User(p.Context, task)
			if err != nil {
				var notFound *models.NotFoundError
				if errors.As(err, &notFound) {
					return nil, nil
				}
				return nil, err
			}
			return user, nil
		},
	})
}

func (b *schemaBuilder) buildUserType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "User",
		Description: "User type",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.User).ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.User).Name, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.User).Email, nil
				},
			},
			"avatar": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.User).Avatar, nil
				},
			},
			"postCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					count, err := b.users.PostCount(p.Context, p.Source.(*models.User).ID)
					if err != nil {
						return nil, err
					}
					return int(count), nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.User).CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.User).UpdatedAt, nil
				},
			},
		},
	})
}

func (b *schemaBuilder) buildPostType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "Post",
		Description: "Post type with author relation",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Post).ID, nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Post).Title, nil
				},
			},
			"content": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Post).Content, nil
				},
			},
			"excerpt": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"length": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					length := b.excerptLength
					if arg, ok := p.Args["length"].(int); ok {
						length = arg
					}
					return p.Source.(*models.Post).Excerpt(length), nil
				},
			},
			"authorId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Post).AuthorID, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Post).CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Post).UpdatedAt, nil
				},
			},
		},
	})
}

func (b *schemaBuilder) buildTaskType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "Task",
		Description: "Task type",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Task).ID, nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Task).Title, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Task).Description, nil
				},
			},
			"userId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Task).UserID, nil
				},
			},
			"startDate": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Task).StartDate, nil
				},
			},
			"endDate": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Task).EndDate, nil
				},
			},
			"status": &graphql.Field{
				Type: taskStatusEnum,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return string(p.Source.(*models.Task).Status), nil
				},
			},
			"priority": &graphql.Field{
				Type: taskPriorityEnum,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return string(p.Source.(*models.Task).Priority), nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Task).CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Task).UpdatedAt, nil
				},
			},
		},
	})
}
