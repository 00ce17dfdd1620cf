/*
 *  Copyright (c) 2026, Zhezkazgan University. All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package server

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"log"
	"math/big"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"campus-api/config"
	"campus-api/internal/auth"
	"campus-api/internal/client"
	"campus-api/internal/handler"
	"campus-api/internal/middleware"
	"campus-api/internal/service"
	"campus-api/internal/store"
	"campus-api/internal/utils"
	"campus-api/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	store  *store.FileStore
	hub    *websocket.Hub
	cfg    *config.Server
}

// StartCMSServer creates a new server instance with all dependencies initialized
func StartCMSServer(cfg *config.Server) (*Server, error) {
	// Initialize the content store
	fileStore, err := store.NewFileStore(cfg.Content.DataDir)
	if err != nil {
		return nil, err
	}

	// Seed bundled default content into missing resources
	seeds, err := utils.LoadSeedDocumentsFromDirectory(cfg.Content.SeedDir)
	if err != nil {
		log.Printf("[WARN] Failed to load content seeds from %s: %v", cfg.Content.SeedDir, err)
	}
	if len(seeds) > 0 {
		seeder := service.NewContentSeeder(fileStore, seeds)
		seeded, err := seeder.Run()
		if err != nil {
			return nil, fmt.Errorf("content seeding failed: %w", err)
		}
		if seeded > 0 {
			log.Printf("[INFO] Seeded %d content resources from %s", seeded, cfg.Content.SeedDir)
		}
	}

	// Initialize the session authenticator
	authn := auth.NewAuthenticator(auth.Config{
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
		Secret:       []byte(cfg.Admin.SessionSecret),
		TTL:          time.Duration(cfg.Admin.SessionTTL) * time.Hour,
	})

	// Initialize the admin change feed
	hub := websocket.NewHub(cfg.WebSocket.MaxConnections)

	// Initialize upstream clients
	llmClient := client.NewLLMClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model,
		cfg.LLM.Retries, time.Duration(cfg.LLM.Timeout)*time.Second)
	telegramClient := client.NewTelegramClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID,
		time.Duration(cfg.Telegram.Timeout)*time.Second)
	instagramClient := client.NewInstagramClient(cfg.Instagram.AccessToken, cfg.Instagram.AccountID,
		time.Duration(cfg.Instagram.Timeout)*time.Second)

	// Initialize services
	contentService := service.NewContentService(fileStore, hub)
	newsService := service.NewNewsService(fileStore, hub)
	translationService := service.NewTranslationService(fileStore, cfg.Content.Locales, hub)
	llmService := service.NewLLMService(llmClient)
	socialService := service.NewSocialService(telegramClient, instagramClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authn, cfg.Admin.CookieSecure)
	contentHandler := handler.NewContentHandler(contentService)
	newsHandler := handler.NewNewsHandler(newsService)
	translationHandler := handler.NewTranslationHandler(translationService)
	publicHandler := handler.NewPublicHandler(contentService, newsService, translationService, cfg.Cache.MaxAge)
	llmHandler := handler.NewLLMHandler(llmService)
	socialHandler := handler.NewSocialHandler(socialService)
	feedHandler := handler.NewFeedHandler(hub)

	// Setup router
	router := gin.Default()

	// Configure and apply CORS middleware first (before auth middleware)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// Register ungated routes: auth endpoints and the public read mirrors
	authHandler.RegisterRoutes(router)
	publicHandler.RegisterRoutes(router)

	// Every other admin route requires a valid session cookie
	adminGroup := router.Group("/api/admin", middleware.SessionAuth(authn))
	contentHandler.RegisterRoutes(adminGroup)
	newsHandler.RegisterRoutes(adminGroup)
	translationHandler.RegisterRoutes(adminGroup)
	llmHandler.RegisterRoutes(adminGroup)
	socialHandler.RegisterRoutes(adminGroup)
	feedHandler.RegisterRoutes(adminGroup)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Printf("[INFO] Content store ready: dataDir=%s locales=%v feedMaxConnections=%d",
		cfg.Content.DataDir, cfg.Content.Locales, cfg.WebSocket.MaxConnections)

	return &Server{
		router: router,
		store:  fileStore,
		hub:    hub,
		cfg:    cfg,
	}, nil
}

// Start starts the HTTP server, or HTTPS when TLS is enabled
func (s *Server) Start(port string) error {
	if port == "" {
		return fmt.Errorf("port cannot be empty")
	}
	address := fmt.Sprintf(":%s", port)

	if !s.cfg.TLS.Enabled {
		log.Printf("Starting HTTP server on http://localhost:%s", port)
		server := &http.Server{
			Addr:    address,
			Handler: s.router,
		}
		return server.ListenAndServe()
	}

	cert, err := loadOrGenerateCert(s.cfg.TLS.CertDir)
	if err != nil {
		return err
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}

	server := &http.Server{
		Addr:      address,
		Handler:   s.router,
		TLSConfig: tlsConfig,
	}

	log.Printf("Starting HTTPS server on https://localhost:%s", port)
	return server.ListenAndServeTLS("", "")
}

// GetRouter returns the gin router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// loadOrGenerateCert loads the TLS key pair from certDir, generating and
// persisting a self-signed one for development when none exists.
func loadOrGenerateCert(certDir string) (tls.Certificate, error) {
	certPath := filepath.Join(certDir, "cert.pem")
	keyPath := filepath.Join(certDir, "key.pem")

	if _, certErr := os.Stat(certPath); certErr == nil {
		if _, keyErr := os.Stat(keyPath); keyErr == nil {
			loadedCert, err := tls.LoadX509KeyPair(certPath, keyPath)
			if err == nil {
				log.Printf("Using existing certificates from %s", certDir)
				return loadedCert, nil
			}
			log.Printf("Failed to load certificates: %v", err)
		}
	}

	log.Println("Generating self-signed certificate for development...")
	if err := os.MkdirAll(certDir, 0755); err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to create cert directory: %v", err)
	}
	return generateSelfSignedCert(certPath, keyPath)
}

// generateSelfSignedCert creates a self-signed certificate for development and saves it to disk
func generateSelfSignedCert(certPath, keyPath string) (tls.Certificate, error) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return tls.Certificate{}, err
	}

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject: pkix.Name{
			Organization: []string{"Campus CMS Dev"},
			Country:      []string{"KZ"},
		},
		NotBefore:   time.Now(),
		NotAfter:    time.Now().Add(365 * 24 * time.Hour), // Valid for 1 year
		KeyUsage:    x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IPAddresses: []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback},
		DNSNames:    []string{"localhost"},
	}

	certDER, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	if err != nil {
		return tls.Certificate{}, err
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certDER})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})

	if err := os.WriteFile(certPath, certPEM, 0644); err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to save certificate: %v", err)
	}
	if err := os.WriteFile(keyPath, keyPEM, 0600); err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to save private key: %v", err)
	}
	log.Printf("Saved certificate to %s and key to %s", certPath, keyPath)

	return tls.X509KeyPair(certPEM, keyPEM)
}
