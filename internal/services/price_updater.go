package services

import (
	"log"
	"sync"
	"time"

	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/models"
)

// CoinStoreInterface define las operaciones que necesitamos del repositorio de monedas
type CoinStoreInterface interface {
	UpsertCoin(coin *models.Coin) error
}

// PriceUpdater es un servicio que refresca periódicamente los precios de
// mercado guardados en la tabla de monedas con los datos del proveedor.
type PriceUpdater struct {
	interval    time.Duration
	limit       int
	coinStore   CoinStoreInterface
	fetch       func(limit int) (models.CmcListings, error)
	isRunning   bool
	stopChan    chan struct{}
	mutex       sync.Mutex
	lastUpdated time.Time
}

// NewPriceUpdater crea un nuevo servicio de actualización de precios
func NewPriceUpdater(interval time.Duration, limit int, coinStore CoinStoreInterface) *PriceUpdater {
	return &PriceUpdater{
		interval:  interval,
		limit:     limit,
		coinStore: coinStore,
		fetch:     GetTopListings,
		isRunning: false,
		stopChan:  make(chan struct{}),
	}
}

// Start inicia el servicio de actualización de precios
func (p *PriceUpdater) Start() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	// time.NewTicker entra en pánico con intervalos no positivos
	if p.interval <= 0 {
		log.Printf("Intervalo de actualización inválido (%v), el servicio no se inicia", p.interval)
		return
	}

	if p.isRunning {
		return
	}

	p.isRunning = true
	p.stopChan = make(chan struct{})

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		// Actualizar inmediatamente al iniciar
		p.refreshPrices()

		for {
			select {
			case <-ticker.C:
				p.refreshPrices()
			case <-p.stopChan:
				return
			}
		}
	}()

	log.Printf("Servicio de actualización de precios iniciado con intervalo de %v", p.interval)
}

// Stop detiene el servicio de actualización de precios
func (p *PriceUpdater) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.isRunning {
		return
	}

	p.isRunning = false
	close(p.stopChan)
	log.Printf("Servicio de actualización de precios detenido")
}

// refreshPrices trae los precios del proveedor y los vuelca en la tabla de monedas
func (p *PriceUpdater) refreshPrices() {
	listings, err := p.fetch(p.limit)
	if err != nil {
		log.Printf("Error al obtener precios del proveedor: %v", err)
		return
	}

	updated := 0
	for _, coin := range ListingsToCoins(listings) {
		if err := p.coinStore.UpsertCoin(&coin); err != nil {
			log.Printf("Error al guardar precio de %s: %v", coin.Symbol, err)
			continue
		}
		updated++
	}

	p.mutex.Lock()
	p.lastUpdated = time.Now()
	p.mutex.Unlock()

	log.Printf("Actualización de precios completada para %d monedas", updated)
}

// GetLastUpdated obtiene la última vez que se actualizaron los precios
func (p *PriceUpdater) GetLastUpdated() time.Time {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.lastUpdated
}
