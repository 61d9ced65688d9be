// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=user.go -destination=../mocks/user.go -package=mocks
//go:generate mockgen -source=group.go -destination=../mocks/group.go -package=mocks
//go:generate mockgen -source=membership.go -destination=../mocks/membership.go -package=mocks
//go:generate mockgen -source=notification.go -destination=../mocks/notification.go -package=mocks
//go:generate mockgen -source=message.go -destination=../mocks/message.go -package=mocks
//go:generate mockgen -source=question.go -destination=../mocks/question.go -package=mocks
