package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
)

// Grants (or revokes) the admin custom claim the dashboard API requires.
func main() {
	uid := flag.String("uid", "", "target firebase uid")
	revoke := flag.Bool("revoke", false, "remove the admin claim instead")
	flag.Parse()
	if *uid == "" {
		log.Fatal("uid is required: -uid=xxxxx")
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil)
	if err != nil {
		log.Fatalf("firebase.NewApp: %v", err)
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("app.Auth: %v", err)
	}

	claims := map[string]interface{}{
		"admin": !*revoke,
		"role":  "admin",
	}
	if *revoke {
		claims["role"] = "customer"
	}

	if err := authClient.SetCustomUserClaims(ctx, *uid, claims); err != nil {
		log.Fatalf("SetCustomUserClaims: %v", err)
	}

	if *revoke {
		fmt.Println("ok: admin claim revoked for", *uid)
	} else {
		fmt.Println("ok: admin claim set for", *uid)
	}
}
