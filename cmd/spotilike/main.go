package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/spotilike/go-client/albums"
	"github.com/spotilike/go-client/api"
	"github.com/spotilike/go-client/artists"
	"github.com/spotilike/go-client/auth"
	"github.com/spotilike/go-client/genres"
	"github.com/spotilike/go-client/internal/config"
	"github.com/spotilike/go-client/session"
	"github.com/spotilike/go-client/storage"
	"github.com/spotilike/go-client/storage/filestore"
	"github.com/spotilike/go-client/storage/redisstore"
	"github.com/spotilike/go-client/token"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("Error: %s\n", err)
	}
}

func run(args []string) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	c := config.New()

	store, err := newStorage(c)
	if err != nil {
		return err
	}

	sess, err := session.New(store)
	if err != nil {
		return err
	}
	sess.LoadUserFromStorage()

	client, err := api.New(c, store)
	if err != nil {
		return err
	}

	authService, err := auth.NewService(auth.Deps{Client: client, Session: sess, Storage: store})
	if err != nil {
		return err
	}

	if len(args) == 0 {
		displayAppname(c.GetAppName())
		usage()
		return errors.New("command required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return dispatch(ctx, args, client, authService)
}

func dispatch(ctx context.Context, args []string, client *api.Client, authService *auth.Service) error {
	switch args[0] {
	case "register":
		if len(args) != 4 {
			return errors.New("usage: register <username> <email> <password>")
		}
		return report(authService.Register(ctx, auth.RegisterRequest{
			Username: args[1],
			Email:    args[2],
			Password: args[3],
		}))
	case "login":
		if len(args) != 3 {
			return errors.New("usage: login <email> <password>")
		}
		return report(authService.Login(ctx, args[1], args[2]))
	case "logout":
		return report(authService.Logout())
	case "whoami":
		return whoami(authService)
	case "albums":
		return listAlbums(ctx, client)
	case "artists":
		return listArtists(ctx, client)
	case "genres":
		return listGenres(ctx, client)
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func report(result auth.Result) error {
	fmt.Println(result.Message)
	if !result.Success {
		return errors.New("operation failed")
	}
	return nil
}

func whoami(authService *auth.Service) error {
	user := authService.CurrentUser()
	if user == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s> (id %d)\n", user.Username, user.Email, user.ID)

	raw := authService.Token()
	if raw == "" {
		fmt.Println("No stored token")
		return nil
	}
	claims, err := token.Inspect(raw)
	if err != nil {
		fmt.Println("Stored token is not a JWT")
		return nil
	}
	if claims.Expired(time.Now()) {
		fmt.Printf("Token expired %s\n", claims.ExpiresAt.Format(time.RFC3339))
	} else if !claims.ExpiresAt.IsZero() {
		fmt.Printf("Token valid until %s\n", claims.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}

func listAlbums(ctx context.Context, client *api.Client) error {
	service, err := albums.NewService(client)
	if err != nil {
		return err
	}
	list, err := service.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, album := range list {
		fmt.Printf("%d\t%s\n", album.ID, album.Title)
	}
	return nil
}

func listArtists(ctx context.Context, client *api.Client) error {
	service, err := artists.NewService(client)
	if err != nil {
		return err
	}
	list, err := service.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, artist := range list {
		fmt.Printf("%d\t%s\n", artist.ID, artist.Name)
	}
	return nil
}

func listGenres(ctx context.Context, client *api.Client) error {
	service, err := genres.NewService(client)
	if err != nil {
		return err
	}
	list, err := service.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, genre := range list {
		fmt.Printf("%d\t%s\n", genre.ID, genre.Name)
	}
	return nil
}

func newStorage(c config.Config) (storage.Repo, error) {
	if addr := c.GetRedisAddr(); addr != "" {
		return redisstore.New(redis.NewClient(&redis.Options{Addr: addr}))
	}
	return filestore.New(c.GetDataFolder())
}

func usage() {
	fmt.Println("Commands:")
	fmt.Println("  register <username> <email> <password>")
	fmt.Println("  login <email> <password>")
	fmt.Println("  logout")
	fmt.Println("  whoami")
	fmt.Println("  albums | artists | genres")
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
