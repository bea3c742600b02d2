package graph

import (
	"time"

	"inkwell/models"

	"github.com/graphql-go/graphql"
)

var userInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"avatar":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var updateUserInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateUserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"avatar":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var updatePostInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdatePostInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"content": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"author":  &graphql.InputObjectFieldConfig{Type: graphql.ID},
	},
})

var taskInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "TaskInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"userId":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"startDate":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.DateTime)},
		"endDate":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.DateTime)},
		"status":      &graphql.InputObjectFieldConfig{Type: taskStatusEnum},
		"priority":    &graphql.InputObjectFieldConfig{Type: taskPriorityEnum},
	},
})

var updateTaskInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateTaskInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"startDate":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"endDate":     &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"status":      &graphql.InputObjectFieldConfig{Type: taskStatusEnum},
		"priority":    &graphql.InputObjectFieldConfig{Type: taskPriorityEnum},
	},
})

func (b *schemaBuilder) mutationRoot() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: b.userType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(userInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := p.Args["input"].(map[string]interface{})
					user := &models.User{
						Name:  stringValue(input, "name"),
						Email: stringValue(input, "email"),
					}
					if avatar := optionalString(input, "avatar"); avatar != nil {
						user.Avatar = *avatar
					}
					if password := optionalString(input, "password"); password != nil {
						user.Password = *password
					}
					return b.users.Create(p.Context, user)
				},
			},
			"updateUser": &graphql.Field{
				Type: b.userType,
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"record": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateUserInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					record := p.Args["record"].(map[string]interface{})
					update := models.UserUpdate{
						Name:     optionalString(record, "name"),
						Email:    optionalString(record, "email"),
						Avatar:   optionalString(record, "avatar"),
						Password: optionalString(record, "password"),
					}
					return b.users.Update(p.Context, p.Args["id"].(string), update)
				},
			},
			"removeUser": &graphql.Field{
				Type: b.userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.users.Delete(p.Context, p.Args["id"].(string))
				},
			},
			"createPost": &graphql.Field{
				Type: b.postType,
				Args: graphql.FieldConfigArgument{
					"title":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"content": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"author":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.posts.Create(
						p.Context,
						p.Args["title"].(string),
						p.Args["content"].(string),
						p.Args["author"].(string),
					)
				},
			},
			"updatePost": &graphql.Field{
				Type: b.postType,
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"record": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updatePostInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					record := p.Args["record"].(map[string]interface{})
					update := models.PostUpdate{
						Title:    optionalString(record, "title"),
						Content:  optionalString(record, "content"),
						AuthorID: optionalString(record, "author"),
					}
					return b.posts.Update(p.Context, p.Args["id"].(string), update)
				},
			},
			"removePost": &graphql.Field{
				Type: b.postType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.posts.Delete(p.Context, p.Args["id"].(string))
				},
			},
			"createTask": &graphql.Field{
				Type: b.taskType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(taskInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := p.Args["input"].(map[string]interface{})
					task := &models.Task{
						Title:  stringValue(input, "title"),
						UserID: stringValue(input, "userId"),
					}
					if description := optionalString(input, "description"); description != nil {
						task.Description = *description
					}
					if start := optionalTime(input, "startDate"); start != nil {
						task.StartDate = *start
					}
					if end := optionalTime(input, "endDate"); end != nil {
						task.EndDate = *end
					}
					if status := optionalString(input, "status"); status != nil {
						task.Status = models.TaskStatus(*status)
					}
					if priority := optionalString(input, "priority"); priority != nil {
						task.Priority = models.TaskPriority(*priority)
					}
					return b.tasks.Create(p.Context, task)
				},
			},
			"updateTask": &graphql.Field{
				Type: b.taskType,
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"record": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateTaskInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					record := p.Args["record"].(map[string]interface{})
					update := models.TaskUpdate{
						Title:       optionalString(record, "title"),
						Description: optionalString(record, "description"),
						StartDate:   optionalTime(record, "startDate"),
						EndDate:     optionalTime(record, "endDate"),
					}
					if status := optionalString(record, "status"); status != nil {
						value := models.TaskStatus(*status)
						update.Status = &value
					}
					if priority := optionalString(record, "priority"); priority != nil {
						value := models.TaskPriority(*priority)
						update.Priority = &value
					}
					return b.tasks.Update(p.Context, p.Args["id"].(string), update)
				},
			},
			"removeTask": &graphql.Field{
				Type: b.taskType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.tasks.Delete(p.Context, p.Args["id"].(string))
				},
			},
		},
	})
}

func stringValue(args map[string]interface{}, key string) string {
	if value, ok := args[key].(string); ok {
		return value
	}
	return ""
}

func optionalString(args map[string]interface{}, key string) *string {
	if value, ok := args[key].(string); ok {
		return &value
	}
	return nil
}

func optionalTime(args map[string]interface{}, key string) *time.Time {
	if value, ok := args[key].(time.Time); ok {
		return &value
	}
	return nil
}
