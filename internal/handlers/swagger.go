package handlers

// @title HockeyStats Item API
// @version 1.0
// @description Adds and fetches items in the HockeyStats key-value table.

// @contact.name API Support
// @contact.url https://github.com/hockeystats/hockeystats-api

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /

// @tag.name items
// @tag.description Item add and fetch operations
