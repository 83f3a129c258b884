package services

import (
	"fmt"

	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/dto"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
)

// A nil payload means the request body was absent or not a JSON object.
// Handlers pass it through so each operation can report "Not a JSON" at the
// same point the other checks happen.
func requireJSON(payload dto.Payload) error {
	if payload == nil {
		return dto.ErrNotJSON
	}
	return nil
}

func get[T models.Model](sess database.Session, kind models.Kind, id string) (T, error) {
	obj, err := database.GetAs[T](sess, kind, id)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("get %s %s: %w", kind, id, err)
	}
	return obj, nil
}

// exists reports ErrNotFound when no record of kind has this id.
func exists(sess database.Session, kind models.Kind, id string) error {
	if _, err := sess.Get(kind, id); err != nil {
		return fmt.Errorf("get %s %s: %w", kind, id, err)
	}
	return nil
}

// insert fills obj from the payload, lets fill set what the payload may not,
// and persists it.
func insert[T models.Model](sess database.Session, obj T, payload dto.Payload, fill func(T) error) (T, error) {
	var zero T
	if err := payload.ApplyTo(obj); err != nil {
		return zero, err
	}
	if fill != nil {
		if err := fill(obj); err != nil {
			return zero, err
		}
	}
	if err := sess.New(obj); err != nil {
		return zero, fmt.Errorf("create %s: %w", obj.Kind(), err)
	}
	if err := sess.Save(); err != nil {
		return zero, fmt.Errorf("save %s: %w", obj.Kind(), err)
	}
	return obj, nil
}

// patch applies the whitelisted payload keys to the record kind/id. before,
// when set, runs after the patch and before the record is stored.
func patch[T models.Model](sess database.Session, kind models.Kind, id string, payload dto.Payload, before func(T) error) (T, error) {
	var zero T
	if err := requireJSON(payload); err != nil {
		return zero, err
	}
	obj, err := get[T](sess, kind, id)
	if err != nil {
		return zero, err
	}
	if err := payload.ApplyTo(obj); err != nil {
		return zero, err
	}
	if before != nil {
		if err := before(obj); err != nil {
			return zero, err
		}
	}
	if err := sess.Update(obj); err != nil {
		return zero, fmt.Errorf("update %s %s: %w", kind, id, err)
	}
	if err := sess.Save(); err != nil {
		return zero, fmt.Errorf("save %s: %w", kind, err)
	}
	return obj, nil
}

// remove deletes kind/id and flushes the session.
func remove(sess database.Session, kind models.Kind, id string) error {
	obj, err := sess.Get(kind, id)
	if err != nil {
		return fmt.Errorf("get %s %s: %w", kind, id, err)
	}
	if err := sess.Delete(obj); err != nil {
		return fmt.Errorf("delete %s %s: %w", kind, id, err)
	}
	if err := sess.Save(); err != nil {
		return fmt.Errorf("save %s: %w", kind, err)
	}
	return nil
}

// children resolves the ids returned by an index lookup into records.
func children[T models.Model](sess database.Session, kind models.Kind, ids []string, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	return database.Collect[T](sess, kind, ids)
}
