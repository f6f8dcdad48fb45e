// Package cachekey holds Redis keys shared between packages that read and invalidate them.
package cachekey

const DashboardStats = "dashboard:stats"
