package service

import (
	"userpanel/database"
	"userpanel/database/model"
	"userpanel/logger"
	"userpanel/util/crypto"
)

// UserService owns account lookups, uniqueness checks and the account
// lifecycle (create, update, delete). Uniqueness is pre-checked so the
// caller gets a field-specific conflict, and additionally enforced by the
// store's unique indexes so a racing writer loses cleanly.
type UserService struct{}

func (s *UserService) GetUser(id int) (*model.Account, error) {
	db := database.GetDB()

	account := &model.Account{}
	err := db.Model(model.Account{}).
		Where("id = ?", id).
		First(account).
		Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *UserService) GetUserByUsername(username string) (*model.Account, error) {
	db := database.GetDB()

	account := &model.Account{}
	err := db.Model(model.Account{}).
		Where("username = ?", username).
		First(account).
		Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *UserService) GetUserByEmail(email string) (*model.Account, error) {
	db := database.GetDB()

	account := &model.Account{}
	err := db.Model(model.Account{}).
		Where("email = ?", email).
		First(account).
		Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return account, nil
}

// IsUsernameTaken reports whether another account already uses username.
// excludeId 0 means no account is excluded (creation path); a non-zero
// excludeId lets an account keep its own username during an edit.
func (s *UserService) IsUsernameTaken(username string, excludeId int) (bool, error) {
	return s.isTaken("username", username, excludeId)
}

// IsEmailTaken is the email counterpart of IsUsernameTaken.
func (s *UserService) IsEmailTaken(email string, excludeId int) (bool, error) {
	return s.isTaken("email", email, excludeId)
}

func (s *UserService) isTaken(column string, value string, excludeId int) (bool, error) {
	db := database.GetDB()

	var count int64
	query := db.Model(model.Account{}).Where(column+" = ?", value)
	if excludeId != 0 {
		query = query.Where("id <> ?", excludeId)
	}
	err := query.Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateUser registers a new account. Registration and administrative
// creation share this single validation path.
func (s *UserService) CreateUser(username string, email string, password string) (*model.Account, error) {
	if taken, err := s.IsUsernameTaken(username, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}
	if taken, err := s.IsEmailTaken(email, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	db := database.GetDB()
	if err := db.Create(account).Error; err != nil {
		// A concurrent writer can still win between the checks above and
		// this insert; the unique indexes catch that and we report it as
		// the same conflict outcome.
		if database.IsDuplicate(err) {
			return nil, s.classifyDuplicate(username, email, 0)
		}
		return nil, err
	}
	return account, nil
}

// UpdateUser edits an account's username and email. The password hash is
// replaced only when a non-empty password is supplied.
func (s *UserService) UpdateUser(id int, username string, email string, password string) (*model.Account, error) {
	account, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if taken, err := s.IsUsernameTaken(username, id); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}
	if taken, err := s.IsEmailTaken(email, id); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}

	account.Username = username
	account.Email = email
	if password != "" {
		hash, err := crypto.HashPassword(password)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hash
	}

	db := database.GetDB()
	if err := db.Save(account).Error; err != nil {
		if database.IsDuplicate(err) {
			return nil, s.classifyDuplicate(username, email, id)
		}
		return nil, err
	}
	return account, nil
}

// classifyDuplicate maps a unique-index violation back to the field that
// caused it by re-querying the store.
func (s *UserService) classifyDuplicate(username string, email string, excludeId int) error {
	if taken, err := s.IsUsernameTaken(username, excludeId); err == nil && taken {
		return ErrUsernameTaken
	}
	if taken, err := s.IsEmailTaken(email, excludeId); err == nil && taken {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}

func (s *UserService) DeleteUser(id int) error {
	db := database.GetDB()

	result := db.Delete(&model.Account{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserService) ListUsers() ([]model.Account, error) {
	db := database.GetDB()

	var accounts []model.Account
	err := db.Model(model.Account{}).
		Order("id").
		Find(&accounts).
		Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *UserService) CountUsers() (int64, error) {
	db := database.GetDB()

	var count int64
	err := db.Model(model.Account{}).Count(&count).Error
	return count, err
}

// CheckUser verifies login credentials. The outcome is identical for an
// unknown username and a wrong password, so callers cannot tell which
// check failed.
func (s *UserService) CheckUser(username string, password string) (*model.Account, error) {
	account, err := s.GetUserByUsername(username)
	if err == ErrNotFound {
		logger.Debug("login failed: unknown username")
		return nil, ErrInvalidCredentials
	} else if err != nil {
		return nil, err
	}

	if !crypto.CheckPasswordHash(account.PasswordHash, password) {
		logger.Debug("login failed: wrong password")
		return nil, ErrInvalidCredentials
	}
	return account, nil
}
