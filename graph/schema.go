// Package graph is the query-language adapter: hand-written GraphQL type
// definitions and an explicit resolver map over the service layer. No type
// is derived from the storage schema at runtime.
package graph

import (
	"inkwell/service"

	"github.com/graphql-go/graphql"
)

type schemaBuilder struct {
	users *service.UserService
	posts *service.PostService
	tasks *service.TaskService

	excerptLength int

	userType *graphql.Object
	postType *graphql.Object
	taskType *graphql.Object
}

// NewSchema assembles the executable schema over the given services.
// excerptLength is the default cutoff for the Post.excerpt field.
func NewSchema(users *service.UserService, posts *service.PostService, tasks *service.TaskService, excerptLength int) (graphql.Schema, error) {
	b := &schemaBuilder{
		users:         users,
		posts:         posts,
		tasks:         tasks,
		excerptLength: excerptLength,
	}

	b.buildTypes()

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    b.queryRoot(),
		Mutation: b.mutationRoot(),
	})
}

func (b *schemaBuilder) queryRoot() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type: graphql.NewList(b.userType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.users.List(p.Context)
				},
			},
			"user": &graphql.Field{
				Type: b.userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.users.Get(p.Context, p.Args["id"].(string))
				},
			},
			"posts": &graphql.Field{
				Type: graphql.NewList(b.postType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.posts.List(p.Context)
				},
			},
			"post": &graphql.Field{
				Type: b.postType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.posts.Get(p.Context, p.Args["id"].(string))
				},
			},
			"tasksByUser": &graphql.Field{
				Type: graphql.NewList(b.taskType),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.tasks.ListByUser(p.Context, p.Args["userId"].(string))
				},
			},
		},
	})
}
