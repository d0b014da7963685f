package main

import (
	"fmt"

	"github.com/go-git/go-git/v5"

	"github.com/rohansen856/git-editor/cmd"
)

func openRepo(path string) (*git.Repository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open repository at %s: %w", path, err)
	}

	return repo, nil
}

// resolveIdentity merges explicit flags over the config defaults, prompting
// for whatever is still missing.
func resolveIdentity(configPath, name, email string) (string, string, error) {
	cfg, err := cmd.LoadConfig(configPath)
	if err != nil {
		return "", "", err
	}

	if name == "" {
		name = cfg.Name
	}
	if email == "" {
		email = cfg.Email
	}

	if name == "" {
		name, err = cmd.Prompt("New author name:")
		if err != nil {
			return "", "", err
		}
	}
	if email == "" {
		email, err = cmd.Prompt("New author email:")
		if err != nil {
			return "", "", err
		}
	}

	return name, email, nil
}
