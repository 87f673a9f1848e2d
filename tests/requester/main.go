package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080/api"

// Нагрузка на чтение: списки заказов и опрос статуса несуществующих заказов.
// Опрос статуса не трогает провайдера, если заказа нет в хранилище.
func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID(length int) string {
	chars := []rune("0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func doRequest() {
	var url string
	switch rand.Intn(3) {
	case 0:
		url = baseURL + "/orders"
	case 1:
		url = baseURL + "/history"
	default:
		url = baseURL + "/status/" + randomID(9)
	}

	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}
