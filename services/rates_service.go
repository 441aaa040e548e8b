package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	config "github.com/And937/liberty-cent-app/configs"
	ws "github.com/And937/liberty-cent-app/websocket"
)

const ratesURL = "https://api.coingecko.com/api/v3/simple/price?ids=tether,solana,bitcoin,tron,algorand,ethereum,toncoin&vs_currencies=usd"

var (
	ratesCache    map[string]float64
	ratesMutex    sync.RWMutex
	lastFetchTime time.Time
)

// FetchRates returns the cached USD spot prices for the trade page, refreshing
// them from CoinGecko when the cache is older than a minute. Display only;
// nothing here touches a balance.
func FetchRates() (map[string]float64, error) {
	ratesMutex.RLock()
	if time.Since(lastFetchTime) < time.Minute && ratesCache != nil {
		defer ratesMutex.RUnlock()
		return ratesCache, nil
	}
	ratesMutex.RUnlock()

	log.Println("Fetching fresh crypto rates from CoinGecko...")

	req, err := http.NewRequest("GET", ratesURL, nil)
	if err != nil {
		return nil, err
	}
	if apiKey := config.Config("COINGECKO_API_KEY"); apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", apiKey)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CoinGecko returned status %d", resp.StatusCode)
	}

	var data map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	rates := make(map[string]float64, len(data))
	for coin, quote := range data {
		if usd, ok := quote["usd"]; ok {
			rates[coin] = usd
		}
	}

	ratesMutex.Lock()
	ratesCache = rates
	lastFetchTime = time.Now()
	ratesMutex.Unlock()

	ws.BroadcastRates(rates)
	log.Println("Successfully updated crypto rate cache.")

	return rates, nil
}

// RefreshRatesLoop keeps the cache warm and the websocket ticker fed.
func RefreshRatesLoop() {
	for {
		if _, err := FetchRates(); err != nil {
			log.Printf("🔥 Failed to refresh crypto rates: %v", err)
		}
		time.Sleep(time.Minute)
	}
}
