package main

import (
	"flag"
	"fmt"

	"epic-gym-system/app/config"
	"epic-gym-system/app/database"
	"epic-gym-system/app/models"
)

func main() {
	email := flag.String("email", "", "email address for the new account")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	role := flag.String("role", "reception", "role: admin, reception or coach")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email ... -password ... [-first ...] [-last ...] [-role admin|reception|coach]")
		return
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	user := &models.User{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if err := database.CreateUser(db, user, *role); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("Created %s account %s (%s)\n", *role, user.Email, user.ID)
}
