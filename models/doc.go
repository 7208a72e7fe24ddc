// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

One struct per table. JSON and db tags both use the column names:

  - About: description, system_developer, date_created
  - Activity: activity_name, description, day
  - Chore: chores_name, description, day
  - Guide: guide_name, guide_description, image
  - MotivationalQuote: quote
  - AdminCredential: username, password (password never serialized)

# Request Types

  - AdminCredentialsRequest: username, password

# Response Types

  - MessageResponse: message
  - CreatedResponse: message, id
  - LoginResponse: message, username
  - ErrorResponse: error, message

# Dates

Date carries a calendar day encoded as YYYY-MM-DD in JSON and in the
database. It implements json.Marshaler, json.Unmarshaler, sql.Scanner and
driver.Valuer.
*/
package models
