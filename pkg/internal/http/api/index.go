package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		api.Get("/feed", getFeed)

		tags := api.Group("/tags").Name("Tags API")
		{
			tags.Get("/", listTags)
			tags.Get("/:tag", getTag)
		}

		posts := api.Group("/posts").Name("Posts API")
		{
			posts.Get("/", listPost)
			posts.Post("/", createPost)
			posts.Get("/:postId", getPost)
			posts.Delete("/:postId", deletePost)

			posts.Get("/:postId/replies", listPostReplies)
			posts.Post("/:postId/replies", createPostReply)

			posts.Post("/:postId/like", likePost)
			posts.Delete("/:postId/like", unlikePost)
		}

		api.Get("/likes", listMyLikes)

		users := api.Group("/users").Name("Users API")
		{
			users.Get("/:account/likes", listAccountLikes)
		}

		profiles := api.Group("/profiles").Name("Profiles API")
		{
			profiles.Put("/me", updateMyProfile)
			profiles.Get("/:account", getProfile)
		}

		questions := api.Group("/questions").Name("Questions API")
		{
			questions.Get("/", listQuestions)
			questions.Post("/", createQuestion)
			questions.Get("/:questionId", getQuestion)
			questions.Post("/:questionId/replies", createQuestionReply)
		}

		assignments := api.Group("/assignments").Name("Assignments API")
		{
			assignments.Get("/", listAssignments)
			assignments.Post("/", createAssignment)
			assignments.Delete("/:assignmentId", deleteAssignment)
		}

		api.Post("/attachments", uploadAttachment)
	}
}
