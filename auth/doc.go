// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth stores and checks admin credentials.

# Registration

	id, err := auth.Register(ctx, conn, username, password)

The pair is inserted as given; duplicate usernames are allowed.

# Login

	admin, err := auth.Login(ctx, conn, username, password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		// no row matched both columns
	}

Both username and password must match a stored row exactly. Passwords are
stored and compared in plain text. There are no sessions or tokens; a
successful login only confirms the pair.
*/
package auth
