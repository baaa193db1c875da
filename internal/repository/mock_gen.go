// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./team.go -destination=../mocks/mock_team_repository.go -package=mocks TeamRepositoryIface
//go:generate mockgen -source=./event.go -destination=../mocks/mock_event_repository.go -package=mocks EventRepositoryIface
//go:generate mockgen -source=./notification.go -destination=../mocks/mock_notification_repository.go -package=mocks NotificationRepositoryIface
//go:generate mockgen -source=./certificate.go -destination=../mocks/mock_certificate_repository.go -package=mocks CertificateRepositoryIface
