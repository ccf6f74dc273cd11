// Package graphql maps the named API operations onto a GraphQL schema and
// owns the request-scoped context plumbing the resolvers depend on.
package graphql

import (
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/sirupsen/logrus"

	"critterbook/internal/domain"
	"critterbook/internal/service"
)

// errNoteLoginRequired keeps the original wording of the note-specific
// authorization failure, distinct from the generic one.
var errNoteLoginRequired = domain.NewError(domain.KindAuthorization, "You must be logged in to create a note")

// Resolver binds the schema's fields to the service layer.
type Resolver struct {
	auth    service.AuthService
	animals service.AnimalService
	notes   service.NoteService
	log     logrus.FieldLogger
}

// classify keeps typed failures as-is and converts anything else into a
// generic persistence error, logging the original. Raw store errors never
// reach API responses.
func (r *Resolver) classify(err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return de
	}
	r.log.WithError(err).Error("store failure")
	return domain.NewError(domain.KindPersistence, "Database error")
}

// NewSchema builds the executable schema:
//
//	Query.animals, Query.animal(id), Query.notes, Query.note(id)
//	Mutation.createAnimal/updateAnimal/deleteAnimal/login/register/createNote
func NewSchema(auth service.AuthService, animals service.AnimalService, notes service.NoteService, log logrus.FieldLogger) (graphql.Schema, error) {
	r := &Resolver{auth: auth, animals: animals, notes: notes, log: log}

	animalType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Animal",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"firstName": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"type":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"accessory": &graphql.Field{Type: graphql.String},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"username": &graphql.Field{Type: graphql.String},
		},
	})

	noteType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Note",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":       &graphql.Field{Type: graphql.String},
			"textContent": &graphql.Field{Type: graphql.String},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"animals": &graphql.Field{
				Type:    graphql.NewList(animalType),
				Resolve: r.resolveAnimals,
			},
			"animal": &graphql.Field{
				Type: animalType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveAnimal,
			},
			"notes": &graphql.Field{
				Type:    graphql.NewList(noteType),
				Resolve: r.resolveNotes,
			},
			"note": &graphql.Field{
				Type: noteType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveNote,
			},
		},
	})

	animalArgs := graphql.FieldConfigArgument{
		"firstName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"type":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"accessory": &graphql.ArgumentConfig{Type: graphql.String},
	}
	updateAnimalArgs := graphql.FieldConfigArgument{
		"id":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		"firstName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"type":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"accessory": &graphql.ArgumentConfig{Type: graphql.String},
	}
	credentialArgs := graphql.FieldConfigArgument{
		"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
	}

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createAnimal": &graphql.Field{
				Type:    animalType,
				Args:    animalArgs,
				Resolve: r.resolveCreateAnimal,
			},
			"updateAnimal": &graphql.Field{
				Type:    animalType,
				Args:    updateAnimalArgs,
				Resolve: r.resolveUpdateAnimal,
			},
			"deleteAnimal": &graphql.Field{
				Type: animalType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveDeleteAnimal,
			},
			"register": &graphql.Field{
				Type:    userType,
				Args:    credentialArgs,
				Resolve: r.resolveRegister,
			},
			"login": &graphql.Field{
				Type:    userType,
				Args:    credentialArgs,
				Resolve: r.resolveLogin,
			},
			"createNote": &graphql.Field{
				Type: noteType,
				Args: graphql.FieldConfigArgument{
					"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"textContent": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveCreateNote,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func (r *Resolver) resolveAnimals(p graphql.ResolveParams) (interface{}, error) {
	animals, err := r.animals.List(p.Context)
	if err != nil {
		return nil, r.classify(err)
	}
	return animals, nil
}

func (r *Resolver) resolveAnimal(p graphql.ResolveParams) (interface{}, error) {
	id, err := idFromArgs(p.Args)
	if err != nil {
		return nil, err
	}
	animal, err := cachedAnimal(p.Context, id, func() (*domain.Animal, error) {
		return r.animals.Get(p.Context, id)
	})
	if err != nil {
		return nil, r.classify(err)
	}
	if animal == nil {
		return nil, nil
	}
	return animal, nil
}

func (r *Resolver) resolveNotes(p graphql.ResolveParams) (interface{}, error) {
	token, ok := sessionTokenFromContext(p.Context)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	notes, err := r.notes.List(p.Context, token)
	if err != nil {
		return nil, r.classify(err)
	}
	return notes, nil
}

func (r *Resolver) resolveNote(p graphql.ResolveParams) (interface{}, error) {
	token, ok := sessionTokenFromContext(p.Context)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	id, err := idFromArgs(p.Args)
	if err != nil {
		return nil, err
	}
	note, err := r.notes.Get(p.Context, token, id)
	if err != nil {
		return nil, r.classify(err)
	}
	if note == nil {
		return nil, nil
	}
	return note, nil
}

// Mutations check for a session credential before validating the remaining
// fields; the reverse order would leak field-level detail to anonymous
// callers.

func (r *Resolver) resolveCreateAnimal(p graphql.ResolveParams) (interface{}, error) {
	token, ok := sessionTokenFromContext(p.Context)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	input, err := animalInputFromArgs(p.Args)
	if err != nil {
		return nil, err
	}
	animal, err := r.animals.Create(p.Context, token, input.fields())
	if err != nil {
		return nil, r.classify(err)
	}
	return animal, nil
}

func (r *Resolver) resolveUpdateAnimal(p graphql.ResolveParams) (interface{}, error) {
	token, ok := sessionTokenFromContext(p.Context)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	id, err := idFromArgs(p.Args)
	if err != nil {
		return nil, err
	}
	input, err := animalInputFromArgs(p.Args)
	if err != nil {
		return nil, err
	}
	animal, err := r.animals.Update(p.Context, token, id, input.fields())
	if err != nil {
		return nil, r.classify(err)
	}
	return animal, nil
}

func (r *Resolver) resolveDeleteAnimal(p graphql.ResolveParams) (interface{}, error) {
	token, ok := sessionTokenFromContext(p.Context)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	id, err := idFromArgs(p.Args)
	if err != nil {
		return nil, err
	}
	animal, err := r.animals.Delete(p.Context, token, id)
	if err != nil {
		return nil, r.classify(err)
	}
	return animal, nil
}

func (r *Resolver) resolveRegister(p graphql.ResolveParams) (interface{}, error) {
	input, err := credentialsInputFromArgs(p.Args)
	if err != nil {
		return nil, err
	}
	_, cred, err := r.auth.Register(p.Context, input.Username, input.Password)
	if err != nil {
		return nil, r.classify(err)
	}
	recordCredential(p.Context, cred)
	// The session credential is the whole result; no user payload leaves
	// the mutation.
	return nil, nil
}

func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	input, err := credentialsInputFromArgs(p.Args)
	if err != nil {
		return nil, err
	}
	_, cred, err := r.auth.Login(p.Context, input.Username, input.Password)
	if err != nil {
		return nil, r.classify(err)
	}
	recordCredential(p.Context, cred)
	return nil, nil
}

func (r *Resolver) resolveCreateNote(p graphql.ResolveParams) (interface{}, error) {
	token, ok := sessionTokenFromContext(p.Context)
	if !ok {
		return nil, errNoteLoginRequired
	}
	input, err := noteInputFromArgs(p.Args)
	if err != nil {
		return nil, err
	}
	note, err := r.notes.Create(p.Context, token, input.Title, input.TextContent)
	if err != nil {
		return nil, r.classify(err)
	}
	return note, nil
}
