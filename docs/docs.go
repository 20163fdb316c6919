// Package docs holds the swagger documents served by both binaries. Each
// binary has its own swag instance; regenerate after changing the godoc
// annotations on main or the controllers.
package docs

//go:generate swag init --instanceName runner --outputTypes go -o . -g main.go -d ../cmd/runner,../internal/controller/runner,../internal/dto,../internal/quiz
//go:generate swag init --instanceName gradebook --outputTypes go -o . -g main.go -d ../cmd/gradebook,../internal/controller/user,../internal/controller/admin,../internal/dto
