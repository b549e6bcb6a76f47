// cache.go

/**
 * Copyright 2025 (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered help pages only change with the terminal width
	helpCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	helpCacheCleanup = 5 * time.Minute
)

// NewOptimizedHelpCache creates a cache optimized for help text storage
func NewOptimizedHelpCache() *cache.Cache {
	return cache.New(helpCacheExpiration, helpCacheCleanup)
}

func CacheHelpPage(c *cache.Cache, topic string, helpTxt string) {
	// Use Set instead of Add to allow overwriting
	c.Set(topic, helpTxt, helpCacheExpiration)
}

func GetHelpPage(c *cache.Cache, topic string) string {
	val, ok := c.Get(topic)
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrFillCache returns the rendered help page for topic, rendering and
// caching it on a miss.
func GetOrFillCache(c *cache.Cache, topic string, render func(topic string) string) string {
	if page := GetHelpPage(c, topic); page != "" {
		return page
	}
	helpTxt := render(topic)
	CacheHelpPage(c, topic, helpTxt)
	return helpTxt
}
