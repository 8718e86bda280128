package coingecko_coins

const bitcoinJSON = `{
  "id": "bitcoin",
  "symbol": "btc",
  "name": "Bitcoin",
  "market_cap_rank": 1,
  "image": {"thumb": "t.png", "small": "s.png", "large": "l.png"},
  "description": {"en": "Bitcoin is the first decentralized cryptocurrency. It was created in 2009."},
  "categories": ["Cryptocurrency", "Layer 1 (L1)"],
  "links": {"homepage": ["", "http://www.bitcoin.org"], "blockchain_site": ["https://mempool.space/", ""]},
  "last_updated": "2024-05-01T12:30:00.000Z",
  "market_data": {
    "current_price": {"usd": 63000.12, "eur": 59000},
    "market_cap": {"usd": 1240000000000},
    "high_24h": {"usd": 64000},
    "low_24h": {"usd": 61000.5},
    "price_change_24h": -512.33,
    "price_change_percentage_24h": -0.81,
    "circulating_supply": 19690000,
    "total_supply": 21000000,
    "ath": {"usd": 73738},
    "ath_date": {"usd": "2024-03-14T07:10:36.635Z"},
    "atl": {"usd": 67.81},
    "atl_date": {"usd": "2013-07-06T00:00:00.000Z"}
  }
}`

const noSupplyJSON = `{
  "id": "mystery",
  "symbol": "mys",
  "name": "Mystery",
  "market_cap_rank": null,
  "description": {"en": ""},
  "market_data": {
    "current_price": {"usd": 1.5},
    "price_change_percentage_24h": null,
    "total_supply": null
  }
}`
